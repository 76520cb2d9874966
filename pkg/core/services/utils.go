package services

import "github.com/lamnguyen-se/shiftreg/pkg/core/model"

// filterAllocated keeps only registrations an allocation pass has
// already processed.
func filterAllocated(regs []model.Registration) []model.Registration {
	allocated := make([]model.Registration, 0, len(regs))
	for _, reg := range regs {
		if reg.Allocated {
			allocated = append(allocated, reg)
		}
	}
	return allocated
}

// findRegistration returns a pointer into regs for the given id, or
// nil when absent.
func findRegistration(regs []model.Registration, id string) *model.Registration {
	for i := range regs {
		if regs[i].ID == id {
			return &regs[i]
		}
	}
	return nil
}
