package misc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var levels = map[string]int{"DEBUG": 0, "INFO": 1, "WARN": 2, "ERROR": 3}

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	minLevel           = levels["INFO"]
)

// SetLevel drops records below level. Unknown levels are ignored.
func SetLevel(level string) {
	if l, ok := levels[strings.ToUpper(level)]; ok {
		mu.Lock()
		minLevel = l
		mu.Unlock()
	}
}

func SetOutput(w io.Writer) {
	mu.Lock()
	out = w
	mu.Unlock()
}

func Debug(title, content string) {
	record("DEBUG", title, content)
}

func Info(title, content string) {
	record("INFO", title, content)
}

func Warn(title, content string) {
	record("WARN", title, content)
}

func Error(title, content string) {
	record("ERROR", title, content)
}

// Fields formats key value pairs the way records carry them: k="v" k2="v2".
// Values are quoted with Go escaping.
func Fields(kv ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%q", kv[i], fmt.Sprint(kv[i+1]))
	}
	return b.String()
}

func record(level, title, content string) {
	mu.Lock()
	defer mu.Unlock()
	if levels[level] < minLevel {
		return
	}
	fmt.Fprintf(out, "%-5s[%s] %-32s %s\n", level, time.Now().Format("01-02|15:04:05.000"), title, content)
}
