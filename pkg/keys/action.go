package keys

// Action is what a key press or a click asks the browser to do.
type Action int

const (
	None Action = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	PagePrev
	PageNext
	FirstFile
	LastFile
	Select
	GoToDir
	WhereIs
	Help
	Refresh
	Exit
	Cancel
	Complete
)

var actionNames = map[Action]string{
	None:      "none",
	MoveUp:    "up",
	MoveDown:  "down",
	MoveLeft:  "left",
	MoveRight: "right",
	PagePrev:  "prevpage",
	PageNext:  "nextpage",
	FirstFile: "firstfile",
	LastFile:  "lastfile",
	Select:    "enter",
	GoToDir:   "gotodir",
	WhereIs:   "whereis",
	Help:      "help",
	Refresh:   "refresh",
	Exit:      "exit",
	Cancel:    "cancel",
	Complete:  "tab",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
