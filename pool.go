package fracture

import "sync"

const maxPooledBufferCap = 64 * 1024

var formatterPool = sync.Pool{
	New: func() any {
		return NewFormatter()
	},
}

func acquireFormatter() *Formatter {
	f := formatterPool.Get().(*Formatter)
	f.Options = DefaultOptions()
	f.StringWidth = StringWidthByRuneCount
	return f
}

func releaseFormatter(f *Formatter) {
	if f == nil {
		return
	}
	if f.buffer.done.Cap() > maxPooledBufferCap {
		return
	}
	f.buffer.reset()
	formatterPool.Put(f)
}

// Reformat pretty-prints jsonText with default options, using a pooled
// Formatter. For custom options, build a Formatter instead.
func Reformat(jsonText string) (string, error) {
	f := acquireFormatter()
	defer releaseFormatter(f)
	return f.Reformat(jsonText, 0)
}

// Minify strips all optional whitespace from jsonText with default options.
func Minify(jsonText string) (string, error) {
	f := acquireFormatter()
	defer releaseFormatter(f)
	return f.Minify(jsonText)
}

// Serialize pretty-prints a Go value with default options.
func Serialize(value any) (string, error) {
	f := acquireFormatter()
	defer releaseFormatter(f)
	return f.Serialize(value, 0, 100)
}
