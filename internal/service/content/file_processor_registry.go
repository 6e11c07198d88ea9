package content

import (
	"sync"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// FileProcessorRegistry routes uploads to the first processor whose
// CanProcess accepts the filename, in registration order.
type FileProcessorRegistry struct {
	mu         sync.RWMutex
	processors []services.FileProcessor
}

// NewFileProcessorRegistry creates a new file processor registry
func NewFileProcessorRegistry() *FileProcessorRegistry {
	return &FileProcessorRegistry{
		processors: make([]services.FileProcessor, 0),
	}
}

// Register adds a file processor to the registry
func (r *FileProcessorRegistry) Register(processor services.FileProcessor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.processors = append(r.processors, processor)
}

// GetProcessor returns the first processor that can handle the filename, or nil
func (r *FileProcessorRegistry) GetProcessor(filename string) services.FileProcessor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, processor := range r.processors {
		if processor.CanProcess(filename) {
			return processor
		}
	}
	return nil
}
