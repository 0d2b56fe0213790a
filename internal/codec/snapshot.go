package codec

import (
	"fmt"
	"io"

	"github.com/comalice/enumtour"
	"gopkg.in/yaml.v3"
)

// Snapshot is the set of sample values a tour runs over.
type Snapshot struct {
	Home    enumtour.IPAddr
	Work    enumtour.IPAddr
	Message enumtour.Message
	Coin    enumtour.Coin
}

// SnapshotOf captures the sample values of t.
func SnapshotOf(t *enumtour.Tour) Snapshot {
	return Snapshot{
		Home:    t.Home(),
		Work:    t.Work(),
		Message: t.Message(),
		Coin:    t.Coin(),
	}
}

type snapshotDoc struct {
	Home    envelope `yaml:"home"`
	Work    envelope `yaml:"work"`
	Message envelope `yaml:"message"`
	Coin    envelope `yaml:"coin"`
}

type rawSnapshotDoc struct {
	Home    *rawEnvelope `yaml:"home"`
	Work    *rawEnvelope `yaml:"work"`
	Message *rawEnvelope `yaml:"message"`
	Coin    *rawEnvelope `yaml:"coin"`
}

// WriteSnapshot writes s to w as a single YAML document.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	var (
		doc snapshotDoc
		err error
	)
	if doc.Home, err = ipAddrEnvelope(s.Home); err != nil {
		return fmt.Errorf("home: %w", err)
	}
	if doc.Work, err = ipAddrEnvelope(s.Work); err != nil {
		return fmt.Errorf("work: %w", err)
	}
	if doc.Message, err = messageEnvelope(s.Message); err != nil {
		return fmt.Errorf("message: %w", err)
	}
	if doc.Coin, err = coinEnvelope(s.Coin); err != nil {
		return fmt.Errorf("coin: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// ReadSnapshot reads one YAML document written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var doc rawSnapshotDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("yaml decode: %w", err)
	}

	var (
		s   Snapshot
		err error
	)
	if s.Home, err = decodeIPAddr(orEmpty(doc.Home)); err != nil {
		return Snapshot{}, fmt.Errorf("home: %w", err)
	}
	if s.Work, err = decodeIPAddr(orEmpty(doc.Work)); err != nil {
		return Snapshot{}, fmt.Errorf("work: %w", err)
	}
	if s.Message, err = decodeMessage(orEmpty(doc.Message)); err != nil {
		return Snapshot{}, fmt.Errorf("message: %w", err)
	}
	if s.Coin, err = decodeCoin(orEmpty(doc.Coin)); err != nil {
		return Snapshot{}, fmt.Errorf("coin: %w", err)
	}
	return s, nil
}

func orEmpty(raw *rawEnvelope) rawEnvelope {
	if raw == nil {
		return rawEnvelope{}
	}
	return *raw
}
