package storage

import (
	"fmt"
	"sync"

	"AdoptionTutorial_API/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// reset 이후 항상 이 개수만큼 생성
const DefaultRecordCount = 5

type Seeder struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// seed가 0이면 매번 다른 데이터 생성
func NewSeeder(seed int64) *Seeder {
	return &Seeder{faker: gofakeit.New(seed)}
}

func (s *Seeder) Generate(n int) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.Record, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		records = append(records, models.Record{
			ID:     id,
			Phrase: s.catchPhrase(),
			Pic:    fmt.Sprintf("https://picsum.photos/seed/%s/640/480", id[:8]),
			Num:    s.faker.IntRange(1, 100),
		})
	}
	return records
}

// "Senior transparent synergies" 같은 회사 캐치프레이즈
func (s *Seeder) catchPhrase() string {
	return fmt.Sprintf("%s %s %s", s.faker.JobDescriptor(), s.faker.BuzzWord(), s.faker.BS())
}
