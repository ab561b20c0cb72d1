package arbor

import (
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// ReadJSON reads the file and unmarshals its contents into v.
func (f *File) ReadJSON(v any) error {
	data, err := f.Read()
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return opError(OpRead, f.p.String(), err)
	}
	return nil
}

// WriteJSON marshals v as indented JSON and writes it to the file.
func (f *File) WriteJSON(v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	return f.Write(data)
}

// ReadYAML reads the file and unmarshals its contents into v.
func (f *File) ReadYAML(v any) error {
	data, err := f.Read()
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return opError(OpRead, f.p.String(), err)
	}
	return nil
}

// WriteYAML marshals v as YAML and writes it to the file.
func (f *File) WriteYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	return f.Write(data)
}

// ReadTOML reads the file and unmarshals its contents into v.
func (f *File) ReadTOML(v any) error {
	data, err := f.Read()
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return opError(OpRead, f.p.String(), err)
	}
	return nil
}

// WriteTOML marshals v as TOML and writes it to the file.
func (f *File) WriteTOML(v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return opError(OpWrite, f.p.String(), err)
	}
	return f.Write(data)
}
