// Package libdiff compares decoded values.
//
// Values are rendered as indented JSON and compared line by line, so a
// change to one member shows up as the lines of that member alone:
//
//	edits := libdiff.Diff(before, after)
//	if libdiff.Changed(edits) {
//	    libdiff.Write(os.Stdout, edits, encode.NewColors(), 3)
//	}
package libdiff
