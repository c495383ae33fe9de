package main

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// DefaultInterval is the pause between two consecutive sends.
const DefaultInterval = time.Second

// DefaultMessages returns the test messages in send order. The eighth one
// carries the given start time.
func DefaultMessages(now time.Time) []string {
	return []string{
		"Hello UDP Log Viewer!",
		"테스트 메시지 1",
		"UDP 서버가 정상 작동합니다",
		"로그 뷰어 테스트 중...",
		"안녕하세요! 이것은 테스트 메시지입니다.",
		"한글 테스트: 안녕하세요 반갑습니다",
		"특수문자 테스트: !@#$%^&*()",
		"현재 시간: " + now.Format("2006-01-02 15:04:05"),
		"Flutter UDP 서버 테스트 완료!",
		"한글 인코딩 테스트: 가나다라마바사",
		"한글 문장 테스트: 오늘 날씨가 좋네요",
	}
}

// Sequence is one pass over a fixed message list.
type Sequence struct {
	Destination Destination
	Messages    []string
	Interval    time.Duration
	In          io.Reader // operator confirmation
	Out         io.Writer

	sleep func(time.Duration)
}

func NewSequence(dest Destination, messages []string, in io.Reader, out io.Writer) *Sequence {
	return &Sequence{
		Destination: dest,
		Messages:    messages,
		Interval:    DefaultInterval,
		In:          in,
		Out:         out,
		sleep:       time.Sleep,
	}
}

// Run waits for the operator, then hands every message to sender exactly once
// and in order. It returns how many sends succeeded.
func (seq *Sequence) Run(sender Sender) int {
	fmt.Fprintf(seq.Out, "=== UDP Log Viewer test (destination: %s) ===\n", seq.Destination)
	seq.waitForOperator()

	fmt.Fprintln(seq.Out, "\nSending messages...")

	total := len(seq.Messages)
	sent := 0
	for i, message := range seq.Messages {
		fmt.Fprintf(seq.Out, "\n[%d/%d] sending...\n", i+1, total)
		if sender.Send(message) {
			sent++
		}
		if i < total-1 {
			seq.pause()
		}
	}

	fmt.Fprintln(seq.Out, "\n=== Test complete ===")
	fmt.Fprintln(seq.Out, "Check that the log viewer shows the messages!")
	slogger.Infof("Sent %d of %d messages to %s", sent, total, seq.Destination)
	return sent
}

// waitForOperator blocks until a line is read. EOF counts as confirmation so
// piped runs proceed.
func (seq *Sequence) waitForOperator() {
	fmt.Fprintln(seq.Out, "Start the UDP listener, then press Enter...")
	if seq.In == nil {
		return
	}
	if _, err := bufio.NewReader(seq.In).ReadString('\n'); err != nil && err != io.EOF {
		slogger.Warnf("Error reading operator confirmation: %s", err)
	}
}

func (seq *Sequence) pause() {
	if seq.Interval <= 0 {
		return
	}
	if seq.sleep == nil {
		seq.sleep = time.Sleep
	}
	seq.sleep(seq.Interval)
}
