package browser

import (
	"os"
	"testing"

	"github.com/datatug/tugbrowse/pkg/files"
	"github.com/datatug/tugbrowse/pkg/keys"
	"github.com/datatug/tugbrowse/pkg/prompt"
	"go.uber.org/mock/gomock"
)

func newMockStore(t *testing.T) *files.MockStore {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return files.NewMockStore(ctrl)
}

// expectTree makes store answer Stat and Lstat from infos; other paths
// do not exist.
func expectTree(store *files.MockStore, infos map[string]os.FileInfo) {
	lookup := func(path string) (os.FileInfo, error) {
		if info, ok := infos[path]; ok {
			return info, nil
		}
		return nil, os.ErrNotExist
	}
	store.EXPECT().Stat(gomock.Any()).DoAndReturn(lookup).AnyTimes()
	store.EXPECT().Lstat(gomock.Any()).DoAndReturn(lookup).AnyTimes()
}

type promptCall struct {
	title string
	seed  string
}

// scriptedPrompter answers prompts from a queue and records the questions.
type scriptedPrompter struct {
	results []prompt.Result
	calls   []promptCall
}

func (p *scriptedPrompter) Prompt(title, seed string, _ keys.Table) prompt.Result {
	p.calls = append(p.calls, promptCall{title: title, seed: seed})
	if len(p.results) == 0 {
		return prompt.Result{Status: prompt.Cancelled}
	}
	r := p.results[0]
	p.results = p.results[1:]
	return r
}

type recordingHelp struct {
	shown int
	err   error
}

func (h *recordingHelp) Show(keys.Table) error {
	h.shown++
	return h.err
}
