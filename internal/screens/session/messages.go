package session

// engineStartedMsg is sent when the engine has loaded the player's record.
type engineStartedMsg struct {
	Err error
}

// timerTickMsg is sent every second while a question is in play. Seq ties
// the tick to the question it was armed for.
type timerTickMsg struct {
	Seq int
}

// sessionEndMsg is sent to leave the play screen for the result screen.
type sessionEndMsg struct{}
