package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fairpay/fairpay/internal/domain/shift"
)

// shiftFile is the on-disk batch layout. JSON files parse too since JSON is
// valid YAML.
type shiftFile struct {
	Shifts []shift.RawShift `yaml:"shifts"`
}

// ReadShifts decodes a batch from r. Both a {shifts: [...]} document and a
// bare list are accepted. Values stay raw so the controller can normalize
// them exactly like form input.
func ReadShifts(r io.Reader) ([]shift.RawShift, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrReadShifts)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadShifts, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrReadShifts)
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []shift.RawShift
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadShifts, err)
		}
		return list, nil
	}

	var f shiftFile
	if err := root.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadShifts, err)
	}
	return f.Shifts, nil
}

func readShiftsFile(path string, stdin io.Reader) ([]shift.RawShift, error) {
	if path == "-" {
		return ReadShifts(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadShifts, err)
	}
	defer f.Close()
	return ReadShifts(f)
}

// WriteShifts encodes typed shifts in the layout ReadShifts accepts.
func WriteShifts(w io.Writer, shifts []shift.Shift) error {
	return encodeYAML(w, struct {
		Shifts []shift.Shift `yaml:"shifts"`
	}{Shifts: shifts})
}

// WriteTemplate writes n blank shifts, n clamped to the form's bounds.
func WriteTemplate(w io.Writer, n int) error {
	n = shift.ClampShiftCount(n)
	blank := make([]shift.RawShift, n)
	for i := range blank {
		blank[i] = shift.RawShift{
			shift.FieldHoursOnline:     "",
			shift.FieldTasksCompleted:  "",
			shift.FieldEarnings:        "",
			shift.FieldBonusesReceived: "",
			shift.FieldBonusesExpected: "",
			shift.FieldDeductions:      "",
		}
	}
	return encodeYAML(w, shiftFile{Shifts: blank})
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
