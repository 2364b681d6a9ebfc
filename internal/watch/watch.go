package watch

import (
	"strings"
	"sync"

	"github.com/nxadm/tail"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
)

// Line is one line read from a followed report file.
// Line 是从被跟踪的报告文件中读到的一行。
type Line struct {
	Text   string
	Source string
}

// Follower tails report files and streams their lines. Rotated files are
// reopened transparently and missing files are picked up on creation.
// Follower 跟踪报告文件并流式输出行。轮转的文件会被透明地重新打开，
// 尚不存在的文件会在创建后被接续。
type Follower struct {
	Events chan Line

	mu      sync.Mutex
	tails   []*tail.Tail
	watched map[string]bool
	stopped bool
	wg      sync.WaitGroup
}

// NewFollower creates a Follower ready to watch files.
// NewFollower 创建一个可以开始跟踪文件的 Follower。
func NewFollower() *Follower {
	return &Follower{
		Events:  make(chan Line, 1024),
		watched: make(map[string]bool),
	}
}

// Watch starts following file from the given position, "start" or "end".
// Watching the same file twice is a no-op.
// Watch 从指定位置（"start" 或 "end"）开始跟踪 file。
// 重复跟踪同一文件不会有额外效果。
func (f *Follower) Watch(file string, from string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.watched[file] || f.stopped {
		return
	}
	f.watched[file] = true
	f.wg.Add(1)
	go f.tailFile(file, from)
}

func (f *Follower) tailFile(file string, from string) {
	defer f.wg.Done()

	config := tail.Config{
		Location:  seekFrom(from),
		Follow:    true,
		ReOpen:    true, // Handle log rotation
		MustExist: false,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	}

	tailer, err := tail.TailFile(file, config)
	if err != nil {
		logger.Get(nil).Warnf("[WARN] Failed to tail %s: %v", file, err)
		return
	}

	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		_ = tailer.Stop()
		return
	}
	f.tails = append(f.tails, tailer)
	f.mu.Unlock()

	for line := range tailer.Lines {
		if line.Err != nil {
			logger.Get(nil).Warnf("[WARN] Error reading %s: %v", file, line.Err)
			continue
		}
		f.Events <- Line{Text: line.Text, Source: file}
	}
}

// Stop stops all tailers, waits for them, and closes Events.
// Stop 停止所有跟踪器，等待它们退出并关闭 Events。
func (f *Follower) Stop() {
	f.mu.Lock()
	f.stopped = true
	tails := make([]*tail.Tail, len(f.tails))
	copy(tails, f.tails)
	f.mu.Unlock()

	for _, tailer := range tails {
		_ = tailer.Stop()
	}
	f.wg.Wait()
	close(f.Events)
}

// seekFrom maps a position name to a seek location.
// seekFrom 将位置名映射到 seek 位置。
func seekFrom(from string) *tail.SeekInfo {
	switch from {
	case "start":
		return &tail.SeekInfo{Offset: 0, Whence: 0}
	default:
		return &tail.SeekInfo{Offset: 0, Whence: 2}
	}
}

// IsBanner reports whether a report line is a request banner, the URL
// line centered in a dash field at the top of each report.
// IsBanner 报告某行是否为请求横幅，即每份报告顶部居中于短横线中的 URL 行。
func IsBanner(line string) bool {
	return strings.HasPrefix(line, "--")
}
