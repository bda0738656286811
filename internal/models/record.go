package models

// 시드 레코드, 튜토리얼 응답의 데모 데이터
type Record struct {
	ID     string `json:"id"`
	Phrase string `json:"phrase"`
	Pic    string `json:"pic"`
	Num    int    `json:"num"`
}
