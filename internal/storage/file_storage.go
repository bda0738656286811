package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"AdoptionTutorial_API/internal/models"

	"github.com/gofrs/flock"
)

// FileStore는 {records, calls} 전체를 JSON 파일 하나에 저장한다.
// 열려 있는 동안 <path>.lock 에 배타 잠금을 잡아 다른 프로세스가 같은 파일을 열지 못하게 한다.
type FileStore struct {
	mu    sync.Mutex
	path  string
	lock  *flock.Flock
	state models.State
}

// 키가 없는 경우와 빈 배열을 구분하기 위한 포인터 필드
type fileState struct {
	Records *[]models.Record `json:"records"`
	Calls   *[]models.Call   `json:"calls"`
}

func OpenFile(path string, seeder *Seeder) (s *FileStore, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("OpenFile(): failed to create data directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("OpenFile(): failed to lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		if err != nil {
			lock.Unlock()
		}
	}()

	var loaded fileState
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("OpenFile(): %s not found, creating with default data", path)
	case err != nil:
		return nil, fmt.Errorf("OpenFile(): failed to read %s: %w", path, err)
	default:
		if err := json.Unmarshal(raw, &loaded); err != nil {
			return nil, fmt.Errorf("OpenFile(): failed to parse %s: %w", path, err)
		}
	}

	state := models.State{Records: []models.Record{}, Calls: []models.Call{}}
	if loaded.Records != nil {
		state.Records = *loaded.Records
	} else {
		state.Records = seeder.Generate(DefaultRecordCount)
	}
	if loaded.Calls != nil {
		state.Calls = *loaded.Calls
	}

	s = &FileStore{path: path, lock: lock}
	if err := s.commit(state); err != nil {
		return nil, err
	}
	log.Printf("OpenFile(): loaded %d records and %d calls from %s", len(state.Records), len(state.Calls), path)
	return s, nil
}

func (s *FileStore) Records() ([]models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Records), nil
}

func (s *FileStore) Random() (models.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Records) == 0 {
		return models.Record{}, false, nil
	}
	return s.state.Records[rand.IntN(len(s.state.Records))], true, nil
}

func (s *FileStore) Replace(records []models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Records = append([]models.Record{}, records...)
	return s.commit(next)
}

func (s *FileStore) AppendCall(call models.Call) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Calls = append(slices.Clone(s.state.Calls), call)
	return s.commit(next)
}

func (s *FileStore) Calls() ([]models.Call, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Calls), nil
}

func (s *FileStore) ClearCalls() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state
	next.Calls = []models.Call{}
	return s.commit(next)
}

// Close는 파일 잠금을 해제한다. 여러 번 호출해도 된다.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.Unlock()
}

// 파일 쓰기가 성공한 경우에만 메모리 상태를 교체. s.mu를 잡은 상태로 호출
func (s *FileStore) commit(next models.State) error {
	if next.Records == nil {
		next.Records = []models.Record{}
	}
	if next.Calls == nil {
		next.Calls = []models.Call{}
	}
	raw, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("FileStore.commit(): failed to encode state: %w", err)
	}

	// 임시 파일에 먼저 쓰고 rename (중간에 실패해도 기존 파일 유지)
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("FileStore.commit(): failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("FileStore.commit(): failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("FileStore.commit(): failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("FileStore.commit(): failed to replace %s: %w", s.path, err)
	}

	s.state = next
	return nil
}
