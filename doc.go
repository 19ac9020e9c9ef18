// # csvdoc: An In-Memory Model for Comma-Delimited Files
//
// csvdoc parses a comma-delimited text file into a header plus ordered rows, gives
// indexed and column-named access to the values, supports structural edits, and
// writes the result back to disk.
//
// # Features
//
//   - ReadFile / Decode build a Document: the first line is the header, every following line a row.
//   - Document.Value looks a value up by column name and row index.
//   - Append, Insert, Update and Remove edit rows; they validate before touching the Document.
//   - Header, Body and Row values handed to callers are copies.
//   - WriteFile / Encode render the Document again; existing files are truncated first.
//   - Typed errors (IndexError, SizeError, ColumnError, IOError, ParseError) and KindOf for classification.
//
// # Format
//
// Fields are separated by ',' and records end with '\n'. There is no quoting or
// escaping: a value containing the delimiter is split, and '\r' is kept as data.
//
// # Getting Started
//
//	doc, err := csvdoc.ReadFile("people.csv")
//	if err != nil {
//	    return err
//	}
//	name, err := doc.Value("name", 0)
//	if err != nil {
//	    return err
//	}
//	if err := doc.Append([]string{"Ada", "36"}); err != nil {
//	    return err
//	}
//	return csvdoc.WriteFile("people.csv", doc)
package csvdoc
