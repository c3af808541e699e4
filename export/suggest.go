package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/atomcluster/analysis"
	"github.com/katalvlaran/atomcluster/cluster"
)

// Script is the helper that drives Multiwfn for a set of fragments.
const Script = "preliminary_bash_script.sh"

const separator = "-----------------------------------------"

// Suggestion is one proposed Multiwfn invocation for a single state.
type Suggestion struct {
	// State is the excited state to analyse.
	State int

	// Fragments holds the comma-joined members of each selected cluster,
	// largest first.
	Fragments []string
}

// String renders the shell command, e.g.
// bash preliminary_bash_script.sh 2 1 '1,2,3' '4,5'.
func (s Suggestion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bash %s %d %d", Script, len(s.Fragments), s.State)
	for _, f := range s.Fragments {
		fmt.Fprintf(&b, " '%s'", f)
	}

	return b.String()
}

// Suggest builds one Suggestion per state from the ranked clusters of p.
// Indices are emitted as stored in p, so shift p first for 1-based output.
// No ranked clusters means no suggestions.
func Suggest(ranked []analysis.Ranked, p cluster.Partition, states []int) []Suggestion {
	if len(ranked) == 0 {
		return []Suggestion{}
	}
	fragments := make([]string, len(ranked))
	for i, r := range ranked {
		fragments[i] = FormatMembers(p.Members(r.Key))
	}
	out := make([]Suggestion, len(states))
	for i, st := range states {
		out[i] = Suggestion{State: st, Fragments: fragments}
	}

	return out
}

// WriteSuggestions prints the suggestions in the block layout shown to users.
func WriteSuggestions(w io.Writer, suggestions []Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "suggested Multiwfn run:\n%s\n", separator); err != nil {
		return err
	}
	for _, s := range suggestions {
		_, err := fmt.Fprintf(w, "for %d largest clusters and state %d:\n%s\n%s\n",
			len(s.Fragments), s.State, s, separator)
		if err != nil {
			return err
		}
	}

	return nil
}
