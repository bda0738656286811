/**
* Name: 			storage.go
* Description: 		레코드 목록과 호출 기록을 보관하는 저장소 인터페이스
* Workflow: 		설정된 드라이버(json, sqlite)에 따라 저장소 생성
 */
package storage

import (
	"errors"
	"fmt"

	"AdoptionTutorial_API/internal/models"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

var (
	ErrUnknownDriver = errors.New("unknown store driver")
	// 다른 프로세스(보통 실행 중인 서버)가 같은 JSON 데이터 파일을 쓰고 있음
	ErrLocked = errors.New("data file is in use by another process; stop the server first")
)

// Store는 모든 변경을 즉시 파일에 기록한다 (write-through).
// 쓰기에 실패하면 메모리 상태는 바뀌지 않는다.
type Store interface {
	Records() ([]models.Record, error)
	// id로 찾지 않고 무작위 레코드 하나를 돌려준다. 비어 있으면 ok=false
	Random() (rec models.Record, ok bool, err error)
	Replace(records []models.Record) error
	AppendCall(call models.Call) error
	Calls() ([]models.Call, error)
	ClearCalls() error
	Close() error
}

// 드라이버별 기본 데이터 파일 경로
func DefaultPath(driver string) string {
	if driver == DriverSQLite {
		return ".data/db.sqlite"
	}
	return ".data/db.json"
}

// Open은 데이터 파일을 열고, 새 파일이면 기본 레코드로 채운다.
func Open(driver, path string, seeder *Seeder) (Store, error) {
	if path == "" {
		path = DefaultPath(driver)
	}
	switch driver {
	case DriverJSON, "":
		return OpenFile(path, seeder)
	case DriverSQLite:
		return OpenSQLite(path, seeder)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
