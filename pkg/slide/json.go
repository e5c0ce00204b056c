package slide

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/shapealign/pkg/errors"
)

// Read decodes a slide snapshot from r and validates it.
func Read(r io.Reader) (*Slide, error) {
	var s Slide
	if err := decode(r, &s); err != nil {
		return nil, err
	}
	if s.Shapes == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "snapshot has no \"shapes\" array")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadFile reads a slide snapshot from path.
func ReadFile(path string) (*Slide, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write encodes s as indented JSON. The output can be read back with [Read].
func Write(w io.Writer, s *Slide) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes s to path, replacing any existing file.
func WriteFile(path string, s *Slide) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func decode(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return nil
}

func open(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
