package enums

import "fmt"

// Command describes enum with known light service verbs.
type Command int

const (
	// CmdTurnOn describes turning on command.
	CmdTurnOn Command = iota
	// CmdTurnOff describes turning off command.
	CmdTurnOff
	// CmdToggle describes toggling on-off status command.
	CmdToggle
)

var commandNames = map[Command]string{
	CmdTurnOn:  "turn_on",
	CmdTurnOff: "turn_off",
	CmdToggle:  "toggle",
}

// String returns command name.
func (i Command) String() string {
	return commandNames[i]
}

// CommandString returns command enum from its name.
func CommandString(s string) (Command, error) {
	for k, v := range commandNames {
		if v == s {
			return k, nil
		}
	}

	return CmdTurnOn, fmt.Errorf("%s does not belong to Command values", s)
}

// SliceContainsCommand checks whether slice contains certain command.
func SliceContainsCommand(s []Command, e Command) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}

	return false
}
