package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/shamaton/msgpack/v2"
)

var (
	// ErrParamCannotBeEmpty is returned when a required parameter is empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrEncoderNotFound is returned for an unknown -format value.
	ErrEncoderNotFound = ewrap.New("encoder not found")
)

// Encoder writes a report to w in one output format.
type Encoder interface {
	Encode(w io.Writer, v any) error
}

// EncoderRegistry maps -format names to encoder constructors.
type EncoderRegistry struct {
	encoders map[string]func() Encoder
}

// NewEncoderRegistry returns a registry with text, json and msgpack registered.
func NewEncoderRegistry() *EncoderRegistry {
	r := &EncoderRegistry{encoders: make(map[string]func() Encoder)}
	r.Register("text", func() Encoder { return textEncoder{} })
	r.Register("json", func() Encoder { return jsonEncoder{} })
	r.Register("msgpack", func() Encoder { return msgpackEncoder{} })

	return r
}

// Register adds or replaces the encoder for name.
func (r *EncoderRegistry) Register(name string, createFunc func() Encoder) {
	r.encoders[name] = createFunc
}

// New returns the encoder registered under name.
func (r *EncoderRegistry) New(name string) (Encoder, error) {
	if name == "" {
		return nil, ewrap.Wrap(ErrParamCannotBeEmpty, "format")
	}

	createFunc, ok := r.encoders[name]
	if !ok {
		return nil, ewrap.Wrap(ErrEncoderNotFound, name)
	}

	return createFunc(), nil
}

// textEncoder prints the value's String form followed by a newline.
type textEncoder struct{}

func (textEncoder) Encode(w io.Writer, v any) error {
	if _, err := fmt.Fprintln(w, v); err != nil {
		return ewrap.Wrap(err, "failed to write text")
	}

	return nil
}

type jsonEncoder struct{}

func (jsonEncoder) Encode(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to marshal json")
	}
	data = append(data, '\n')
	if _, err = w.Write(data); err != nil {
		return ewrap.Wrap(err, "failed to write json")
	}

	return nil
}

type msgpackEncoder struct{}

func (msgpackEncoder) Encode(w io.Writer, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to marshal msgpack")
	}
	if _, err = w.Write(data); err != nil {
		return ewrap.Wrap(err, "failed to write msgpack")
	}

	return nil
}
