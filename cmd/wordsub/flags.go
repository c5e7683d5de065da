package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Source selects where dictionary entries are read from.
type Source string

func (s *Source) Set(val string) error {
	for _, source := range allSources {
		if val == string(source) {
			*s = source
			return nil
		}
	}
	return fmt.Errorf("invalid source: %s", val)
}

func (s Source) String() string {
	return string(s)
}

func (s *Source) Type() string {
	return "Source"
}

const (
	SourceFile     Source = "file"
	SourceDatabase Source = "db"
)

// Format selects how reports are rendered.
type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var (
	_          pflag.Value = (*Source)(nil)
	_          pflag.Value = (*Format)(nil)
	allSources             = []Source{SourceFile, SourceDatabase}
	allFormats             = []Format{FormatText, FormatYAML}
)
