package mailfakes

import (
	"context"
	"sync"

	"github.com/xhil-io/autolens-web/mail"
)

var _ mail.Sender = (*FakeSender)(nil)

// FakeSender records sent messages for tests.
type FakeSender struct {
	lock     sync.Mutex
	SendErr  error
	Attempts int
	Messages []mail.Message
}

func New() *FakeSender {
	return &FakeSender{}
}

func (f *FakeSender) Send(_ context.Context, msg mail.Message) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Attempts++
	if f.SendErr != nil {
		return f.SendErr
	}
	f.Messages = append(f.Messages, msg)
	return nil
}

func (f *FakeSender) SentCount() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.Messages)
}
