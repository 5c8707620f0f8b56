// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/providers"
	"github.com/lumen-home/light/utils"
)

// Implements IInternalFanOutProvider.
type provider struct {
	mutex sync.Mutex

	inLightUpdates  chan *common.MsgLightUpdate
	outLightUpdates map[int64]chan *common.MsgLightUpdate
}

// NewFanOut constructs new FanOut provider.
func NewFanOut() providers.IInternalFanOutProvider {
	p := &provider{
		inLightUpdates:  make(chan *common.MsgLightUpdate, 10),
		outLightUpdates: make(map[int64]chan *common.MsgLightUpdate),
	}

	go p.internalCycle()
	return p
}

// SubscribeLightUpdates allows to subscribe to the lights updates.
func (p *provider) SubscribeLightUpdates() (int64, chan *common.MsgLightUpdate) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	c := make(chan *common.MsgLightUpdate, 10)
	rnd := p.getID()
	p.outLightUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeLightUpdates allows to un-subscribe from the lights updates.
func (p *provider) UnSubscribeLightUpdates(id int64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	c, ok := p.outLightUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outLightUpdates, id)
}

// ChannelInLightUpdates returns input channel for the lights updates.
func (p *provider) ChannelInLightUpdates() chan *common.MsgLightUpdate {
	return p.inLightUpdates
}

// Returns random ID.
func (p *provider) getID() int64 {
	return utils.TimeNow() + rand.Int63()
}

func (p *provider) internalCycle() {
	for u := range p.inLightUpdates {
		go p.lightUpdates(u)
	}
}

// Broadcasts light updates.
func (p *provider) lightUpdates(update *common.MsgLightUpdate) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	for _, v := range p.outLightUpdates {
		v <- update
	}
}
