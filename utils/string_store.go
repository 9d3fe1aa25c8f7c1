package utils

import (
	"sync"
)

var storeInstance *stringStoreImpl
var stringStoreInitializer sync.Once

// StringStore interns strings so repeated tags and words share one
// allocation across all tagged documents.
type StringStore interface {
	GetPointer(s string) *string
	GetPointers(ss []string) []*string

	// methods to avoid memory leaks. When the model is loaded the service
	// locks the string store; a locked store doesn't save new pointers.
	Lock()
	IsLocked() bool
}

type stringStoreImpl struct {
	store    sync.Map //map[string] *string
	isLocked bool
}

func (stringStore *stringStoreImpl) GetPointer(s string) *string {
	if !stringStore.isLocked {
		ptr, _ := stringStore.store.LoadOrStore(s, &s)
		return ptr.(*string)
	}

	ptr, ok := stringStore.store.Load(s)
	if !ok {
		return &s
	}

	return ptr.(*string)
}

func (stringStore *stringStoreImpl) GetPointers(ss []string) []*string {
	ptrs := make([]*string, len(ss))
	for i, s := range ss {
		ptrs[i] = stringStore.GetPointer(s)
	}
	return ptrs
}

func (stringStore *stringStoreImpl) Lock() {
	stringStore.isLocked = true
}

func (stringStore *stringStoreImpl) IsLocked() bool {
	return stringStore.isLocked
}

func GlobalStringStore() StringStore {
	stringStoreInitializer.Do(func() {
		storeInstance = new(stringStoreImpl)
		storeInstance.isLocked = false
	})

	return storeInstance
}
