package sessionfakes

import (
	"context"
	"sync"
)

// FakeAuthenticator hands out a canned token or error and records the
// credentials it saw.
type FakeAuthenticator struct {
	lock   sync.Mutex
	token  string
	err    error
	emails []string
}

func NewFakeAuthenticator() *FakeAuthenticator {
	return &FakeAuthenticator{}
}

func (f *FakeAuthenticator) IssueToken(token string) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.token = token
	f.err = nil
}

func (f *FakeAuthenticator) Fail(err error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.err = err
}

func (f *FakeAuthenticator) Login(_ context.Context, email, _ string, _ bool) (string, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.emails = append(f.emails, email)
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *FakeAuthenticator) Calls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.emails)
}

// FakeNavigator records view-layer navigation.
type FakeNavigator struct {
	lock  sync.Mutex
	Views []string
}

func (f *FakeNavigator) ShowHome() {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Views = append(f.Views, "home")
}

func (f *FakeNavigator) ShowLogin() {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Views = append(f.Views, "login")
}
