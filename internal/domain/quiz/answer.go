package quiz

import "strings"

type Answer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
}

// AnswerSet keeps at most one answer per question id, in the order the
// questions were first answered.
type AnswerSet struct {
	items []Answer
	index map[string]int
}

func NewAnswerSet(answers ...Answer) *AnswerSet {
	s := &AnswerSet{index: make(map[string]int, len(answers))}
	for _, a := range answers {
		s.Set(a)
	}
	return s
}

func (s *AnswerSet) Set(a Answer) {
	id := strings.TrimSpace(a.QuestionID)
	if id == "" {
		return
	}
	a.QuestionID = id
	a.SelectedOption = strings.TrimSpace(a.SelectedOption)

	if i, ok := s.index[id]; ok {
		s.items[i] = a
		return
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, a)
}

func (s *AnswerSet) Get(questionID string) (string, bool) {
	if s == nil {
		return "", false
	}
	i, ok := s.index[strings.TrimSpace(questionID)]
	if !ok {
		return "", false
	}
	return s.items[i].SelectedOption, true
}

func (s *AnswerSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *AnswerSet) Answers() []Answer {
	if s == nil {
		return nil
	}
	out := make([]Answer, len(s.items))
	copy(out, s.items)
	return out
}

func (s *AnswerSet) Map() map[string]string {
	out := make(map[string]string, s.Len())
	if s == nil {
		return out
	}
	for _, a := range s.items {
		out[a.QuestionID] = a.SelectedOption
	}
	return out
}
