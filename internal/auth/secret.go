/* 관리자 엔드포인트용 공유 비밀값 검증 */

package auth

import (
	"crypto/subtle"
	"log"

	"golang.org/x/crypto/blake2b"
)

// AdminSecret은 설정된 비밀값의 다이제스트만 보관한다.
type AdminSecret struct {
	digest [blake2b.Size256]byte
	set    bool
}

func NewAdminSecret(secret string) *AdminSecret {
	if secret == "" {
		log.Println("Warning: SECRET environment variable is not set. Admin endpoints will reject every request.")
		return &AdminSecret{}
	}
	return &AdminSecret{digest: blake2b.Sum256([]byte(secret)), set: true}
}

// 요청 헤더 값이 비밀값과 정확히 일치하는지 확인 (빈 값은 항상 실패)
func (s *AdminSecret) Matches(candidate string) bool {
	if !s.set || candidate == "" {
		return false
	}
	got := blake2b.Sum256([]byte(candidate))
	return subtle.ConstantTimeCompare(got[:], s.digest[:]) == 1
}
