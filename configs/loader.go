package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads cue files lazily, once. Earlier files take precedence.
type Loader struct {
	roots func() ([]root, error)
}

type root struct {
	path  string
	value cue.Value
}

type source struct {
	path    string
	content []byte
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]source, error) {
		ret := make([]source, 0, len(filePaths))
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, err
			}
			ret = append(ret, source{filePath, content})
		}
		return ret, nil
	})
}

// NewSourceLoader loads one in-memory source, used for embedded defaults and tests
func NewSourceLoader(name string, src string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]source, error) {
		return []source{{name, []byte(src)}}, nil
	})
}

func newLoader(schemaSrc string, read func() ([]source, error)) Loader {
	return Loader{
		roots: sync.OnceValues(func() ([]root, error) {
			// schema and files must share one runtime to be unified
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("schema: %w", err)
				}
			}

			sources, err := read()
			if err != nil {
				return nil, err
			}

			roots := make([]root, 0, len(sources))
			for _, src := range sources {
				value := ctx.CompileBytes(src.content, cue.Filename(src.path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}
				roots = append(roots, root{src.path, value})
			}
			return roots, nil
		}),
	}
}

// IterCueValues yields the value at path from each file that sets it
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.roots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, r := range roots {
			value := r.value.LookupPath(cuePath)
			if value.Err() != nil || !value.Exists() {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the highest precedence value at path into target, or
// returns ErrValueNotFound
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// Paths returns the files that were loaded, in precedence order
func (l Loader) Paths() ([]string, error) {
	roots, err := l.roots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, r := range roots {
		ret = append(ret, r.path)
	}
	return ret, nil
}
