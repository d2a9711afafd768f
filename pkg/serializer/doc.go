// Package serializer renders command results in the output format selected
// on the command line.
//
// Supported formats:
//   - text: human-readable lines, the default for interactive use
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//   - table: aligned columns
//
// Values control their own text and table rendering by implementing
// TextRenderer and TableRenderer. Values that do not are printed with
// fmt in text mode and flattened to FIELD/VALUE rows in table mode.
//
// Usage:
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
package serializer
