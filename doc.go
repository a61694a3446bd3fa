// Package tabprint renders tables of text as aligned, boxed plain text.
//
// A [Table] has a fixed set of column titles and a growing list of rows.
// Rows are addressed by index; every index-taking method reports
// [ErrRowIndex] or [ErrColumnIndex] instead of panicking:
//
//	t := tabprint.New("Name", "Age")
//	t.AddRow("Alice", "30")
//	t.AddRow("Bob", "7")
//	fmt.Print(t)
//
// prints
//
//	+-------+-----+
//	| Name  | Age |
//	+-------+-----+
//	| Alice | 30  |
//	+-------+-----+
//	| Bob   | 7   |
//	+-------+-----+
//
// # Rendering
//
// [Table.Render] writes to any [io.Writer] and returns write failures
// wrapped in [ErrIO]. [Table.RenderString] renders into a [StringSink],
// which rejects bytes that are not valid UTF-8 with [ErrEncoding].
// [Table.Print] writes to standard output and panics on failure.
//
// # Style
//
// [Table.Separators] changes the column, rule, and cross characters. The
// line terminator is an explicit [Style] setting ([LF] by default, see
// [NativeNewline]).
//
// Column widths are measured in bytes by default, so text outside ASCII
// will not line up visually. Set [MeasureRunes] or [MeasureCells] to
// measure code points or terminal display cells instead.
//
// # Construction Helpers
//
// [MustNew] and [MustPrint] build a table from arbitrary values and panic
// on a row of the wrong length. [FromRowers] and [FromSeq] build tables
// from values implementing [Rower] and return errors instead.
//
// # Other Formats
//
// [Write] and [Marshal] encode a table as CSV, TSV, Markdown, HTML, JSON,
// JSONL, YAML, or a Go template. [Read] decodes CSV, TSV, JSON, and YAML.
// Use [ParseFormat] to turn a flag value into a [Format].
package tabprint
