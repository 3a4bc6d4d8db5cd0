package drill

import "github.com/abhisek/mathgame/internal/session"

// panel is the drill's session.Display. It only stores the latest text of
// each kind for View to render.
type panel struct {
	question string
	result   string
	time     string
	info     string
	summary  string
}

var _ session.Display = (*panel)(nil)

func (p *panel) ShowQuestion(text string) { p.question = text }
func (p *panel) ShowResult(text string)   { p.result = text }
func (p *panel) ShowTime(text string)     { p.time = text }
func (p *panel) ShowSummary(text string)  { p.summary = text }
func (p *panel) ShowInfo(text string)     { p.info = text }
