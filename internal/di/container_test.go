// internal/di/container_test.go
package di

import "testing"

func TestRegisterAndGet(t *testing.T) {
	c := NewContainer()

	c.Register("svc", "instance")
	if got := c.Get("svc"); got != "instance" {
		t.Errorf("Get = %v", got)
	}
	if c.Get("missing") != nil {
		t.Error("missing service should return nil")
	}
	if !c.Has("svc") || c.Has("missing") {
		t.Error("Has reports wrong state")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	c := NewContainer()

	c.Register("svc", "old")
	c.Register("svc", "new")
	if got := c.Get("svc"); got != "new" {
		t.Errorf("Get after overwrite = %v", got)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	c := NewContainer()

	defer func() {
		if recover() == nil {
			t.Error("MustGet should panic for unregistered service")
		}
	}()
	c.MustGet("missing")
}

func TestClearAndNames(t *testing.T) {
	c := NewContainer()
	c.Register("a", 1)
	c.Register("b", 2)

	if len(c.Names()) != 2 {
		t.Errorf("Names = %v", c.Names())
	}

	c.Clear()
	if len(c.Names()) != 0 || c.Has("a") {
		t.Error("Clear should remove all services")
	}
}

func TestGetContainerSingleton(t *testing.T) {
	if GetContainer() != GetContainer() {
		t.Error("GetContainer should return the same instance")
	}
}
