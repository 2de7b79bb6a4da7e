// Package fracture reformats JSON so that it is both readable and compact:
// containers that fit on one line stay on one line, homogeneous arrays and
// objects become tables with aligned columns, and only what genuinely needs
// room gets expanded. It also minifies, handles JSON-with-comments and
// trailing commas, processes JSON Lines, and serializes Go values directly.
//
// Basic usage:
//
//	out, err := fracture.Reformat(`{"a":[1,2,3],"b":[4,5,6]}`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// With options:
//
//	f := fracture.NewFormatter()
//	f.Options.MaxTotalLineLength = 80
//	f.Options.CommentPolicy = fracture.CommentsPreserve
//	out, err := f.Reformat(src, 0)
//
// Serializing Go values:
//
//	out, err := fracture.Serialize(map[string]any{"x": 1, "y": []int{2, 3}})
//
// Number columns in tables can be left as written or rewritten with aligned
// decimal points; see NumberListAlignment. Display width for alignment is
// pluggable through Formatter.StringWidth, with StringWidthEastAsian
// provided for terminals that render CJK characters two cells wide.
package fracture
