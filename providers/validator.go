package providers

import "github.com/lumen-home/light/plugins/common"

// IValidatorProvider defines data structures validator logic.
type IValidatorProvider interface {
	SetLogger(logger common.ILoggerProvider)
	Validate(interface{}) bool
}
