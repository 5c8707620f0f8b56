package providers

import "github.com/lumen-home/light/plugins/common"

// IInternalFanOutProvider defines internal pub-sub channels logic.
type IInternalFanOutProvider interface {
	SubscribeLightUpdates() (int64, chan *common.MsgLightUpdate)
	UnSubscribeLightUpdates(id int64)
	ChannelInLightUpdates() chan *common.MsgLightUpdate
}
