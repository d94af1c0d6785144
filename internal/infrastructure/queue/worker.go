package queue

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sync"

	"har-media-exporter/internal/domain/entities"
	"har-media-exporter/internal/domain/repositories"

	"github.com/disintegration/imaging"
)

// probeableMimes are the raster formats imaging can decode. Other records
// keep only their byte size.
var probeableMimes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/bmp":  true,
}

type Worker struct {
	ID      int
	JobChan <-chan Job
	Wg      *sync.WaitGroup
	Repo    repositories.SessionRepository
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					continue
				default:
					w.processJob(job)
				}
			case <-ctx.Done():
				log.Printf("Worker %d: stopping due to context cancellation", w.ID)
				return
			}
		}
	}()
}

func (w *Worker) processJob(job Job) {
	var err error
	switch job.Type {
	case JobProbeMeta:
		err = w.processProbeMeta(job)
	default:
		err = fmt.Errorf("unknown job type: %s", job.Type)
	}

	// Probing is best-effort; a failure never fails the extraction.
	if err != nil {
		log.Printf("Worker %d: job %s for session %s failed: %v", w.ID, job.Type, job.SessionID, err)
	}
}

func (w *Worker) processProbeMeta(job Job) error {
	meta := entities.MediaMeta{Size: len(job.Data)}

	if probeableMimes[job.MimeType] {
		img, err := imaging.Decode(bytes.NewReader(job.Data))
		if err != nil {
			return fmt.Errorf("image could not be decoded for probing: %w", err)
		}
		bounds := img.Bounds()
		meta.Width = bounds.Dx()
		meta.Height = bounds.Dy()
	}

	return w.Repo.UpdateMeta(job.SessionID, job.Index, meta)
}
