package models

// 호출 기록 한 건 (관리자 조회용)
type Call struct {
	When  string `json:"when"`
	Where string `json:"where"`
	What  string `json:"what"`
}

// 데이터 파일에 저장되는 전체 상태
type State struct {
	Records []Record `json:"records"`
	Calls   []Call   `json:"calls"`
}
