package audiogui

// TickTier ranks tick marks by prominence; TickTierOne is the most prominent.
type TickTier int

const (
	TickTierOne TickTier = iota
	TickTierTwo
	TickTierThree
	TickTierCount
)

// TickMark is a tick drawn at a normal position along a widget.
type TickMark struct {
	Position Normal
	Tier     TickTier
}

// TickMarks is a group of tick marks. The host decides where they go,
// typically by mapping real values through the widget's Range:
//
//	ticks := audiogui.TickMarks{
//	    {Position: freq.ToNormal(100), Tier: audiogui.TickTierOne},
//	    {Position: freq.ToNormal(1000), Tier: audiogui.TickTierOne},
//	}
type TickMarks []TickMark

// TextMark is a label placed at a normal position along a widget.
type TextMark struct {
	Position Normal
	Text     string
}

// TextMarks is a group of text marks. Backends that can render text draw them;
// the DrawList pipeline does not.
type TextMarks []TextMark

func (t TickTier) valid() bool {
	return t >= 0 && t < TickTierCount
}
