package core

import (
	"context"
)

// Interface is implemented by every long-lived component
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry starts components in registration order and stops them in reverse
type Registry struct {
	services []Interface
}

func NewRegistry() *Registry {
	return &Registry{
		services: make([]Interface, 0),
	}
}

func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts every registered service. If one fails, the services started before it
// are stopped and its error is returned as is.
func (sr *Registry) StartAll(ctx context.Context) error {
	for i, service := range sr.services {
		if err := service.Start(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				sr.services[j].Stop()
			}
			return err
		}
	}
	return nil
}

// StopAll stops every registered service in reverse order
func (sr *Registry) StopAll() {
	for i := len(sr.services) - 1; i >= 0; i-- {
		sr.services[i].Stop()
	}
}
