package variant

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var builtins = map[string]string{
	"shatranj": heredoc.Doc(`
		name: shatranj
		rows: 8
		cols: 8
		kinds:
		  - {name: baidaq, value: 1}
		  - {name: faras, value: 2}
		  - {name: alfil, value: 3}
		  - {name: rukh, value: 4}
		  - {name: firzan, value: 5}
		  - {name: shah, value: 6}
		layout: [
		   4,  2,  3,  5,  6,  3,  2,  4,
		   1,  1,  1,  1,  1,  1,  1,  1,
		   0,  0,  0,  0,  0,  0,  0,  0,
		   0,  0,  0,  0,  0,  0,  0,  0,
		   0,  0,  0,  0,  0,  0,  0,  0,
		   0,  0,  0,  0,  0,  0,  0,  0,
		  -1, -1, -1, -1, -1, -1, -1, -1,
		  -4, -2, -3, -5, -6, -3, -2, -4
		  ]
		rules:
		  baidaq:
		    - {vector: [1, 0], max_steps: 1, capture: none}
		    - {vector: [1, -1], max_steps: 1, capture: opposing, when: target-opposes}
		    - {vector: [1, 1], max_steps: 1, capture: opposing, when: target-opposes}
		  faras:
		    - {vector: [2, 1], max_steps: 1, capture: opposing}
		    - {vector: [2, -1], max_steps: 1, capture: opposing}
		    - {vector: [-2, 1], max_steps: 1, capture: opposing}
		    - {vector: [-2, -1], max_steps: 1, capture: opposing}
		    - {vector: [1, 2], max_steps: 1, capture: opposing}
		    - {vector: [1, -2], max_steps: 1, capture: opposing}
		    - {vector: [-1, 2], max_steps: 1, capture: opposing}
		    - {vector: [-1, -2], max_steps: 1, capture: opposing}
		  alfil:
		    - {vector: [2, 2], max_steps: 1, capture: opposing}
		    - {vector: [2, -2], max_steps: 1, capture: opposing}
		    - {vector: [-2, 2], max_steps: 1, capture: opposing}
		    - {vector: [-2, -2], max_steps: 1, capture: opposing}
		  rukh:
		    - {vector: [1, 0], capture: opposing}
		    - {vector: [-1, 0], capture: opposing}
		    - {vector: [0, 1], capture: opposing}
		    - {vector: [0, -1], capture: opposing}
		  firzan:
		    - {vector: [1, 1], max_steps: 1, capture: opposing}
		    - {vector: [1, -1], max_steps: 1, capture: opposing}
		    - {vector: [-1, 1], max_steps: 1, capture: opposing}
		    - {vector: [-1, -1], max_steps: 1, capture: opposing}
		  shah:
		    - {vector: [1, 0], max_steps: 1, capture: opposing}
		    - {vector: [-1, 0], max_steps: 1, capture: opposing}
		    - {vector: [0, 1], max_steps: 1, capture: opposing}
		    - {vector: [0, -1], max_steps: 1, capture: opposing}
		    - {vector: [1, 1], max_steps: 1, capture: opposing}
		    - {vector: [1, -1], max_steps: 1, capture: opposing}
		    - {vector: [-1, 1], max_steps: 1, capture: opposing}
		    - {vector: [-1, -1], max_steps: 1, capture: opposing}
	`),

	"knightrider": heredoc.Doc(`
		name: knightrider
		rows: 6
		cols: 6
		kinds:
		  - {name: pawn, value: 1}
		  - {name: knightrider, value: 2}
		  - {name: king, value: 6}
		layout: [
		   0,  2,  0,  6,  2,  0,
		   1,  1,  1,  1,  1,  1,
		   0,  0,  0,  0,  0,  0,
		   0,  0,  0,  0,  0,  0,
		  -1, -1, -1, -1, -1, -1,
		   0, -2,  0, -6, -2,  0
		  ]
		rules:
		  pawn:
		    - {vector: [1, 0], max_steps: 1, capture: none}
		    - {vector: [1, 0], max_steps: 2, capture: none, when: unmoved}
		    - {vector: [1, -1], max_steps: 1, capture: opposing, when: target-opposes}
		    - {vector: [1, 1], max_steps: 1, capture: opposing, when: target-opposes}
		  knightrider:
		    - {vector: [2, 1], capture: opposing}
		    - {vector: [2, -1], capture: opposing}
		    - {vector: [-2, 1], capture: opposing}
		    - {vector: [-2, -1], capture: opposing}
		    - {vector: [1, 2], capture: opposing}
		    - {vector: [1, -2], capture: opposing}
		    - {vector: [-1, 2], capture: opposing}
		    - {vector: [-1, -2], capture: opposing}
		  king:
		    - {vector: [1, 0], max_steps: 1, capture: opposing}
		    - {vector: [-1, 0], max_steps: 1, capture: opposing}
		    - {vector: [0, 1], max_steps: 1, capture: opposing}
		    - {vector: [0, -1], max_steps: 1, capture: opposing}
		    - {vector: [1, 1], max_steps: 1, capture: opposing}
		    - {vector: [1, -1], max_steps: 1, capture: opposing}
		    - {vector: [-1, 1], max_steps: 1, capture: opposing}
		    - {vector: [-1, -1], max_steps: 1, capture: opposing}
	`),
}

// Builtins lists the names of the definitions compiled into the package.
func Builtins() []string {
	names := maps.Keys(builtins)
	slices.Sort(names)
	return names
}

// Builtin parses the compiled-in definition called name.
func Builtin(name string) (*Definition, error) {
	src, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
	}
	return Parse([]byte(src))
}
