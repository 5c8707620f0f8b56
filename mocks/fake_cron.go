//+build !release

package mocks

type fakeCron struct {
	callbacks []func()
}

func (p *fakeCron) AddFunc(spec string, cmd func()) (int, error) {
	p.callbacks = append(p.callbacks, cmd)
	return len(p.callbacks), nil
}

func (p *fakeCron) RemoveFunc(id int) {
}

// Fire invokes all scheduled jobs.
func (p *fakeCron) Fire() {
	for _, cb := range p.callbacks {
		cb()
	}
}

// FakeNewCron creates a fake cron provider.
func FakeNewCron() *fakeCron {
	return &fakeCron{
		callbacks: make([]func(), 0),
	}
}
