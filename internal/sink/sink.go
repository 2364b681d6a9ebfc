package sink

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/deheerhoreca/Aoe-ModelCache/internal/config"
	"github.com/deheerhoreca/Aoe-ModelCache/internal/utils/logger"
	errs "github.com/deheerhoreca/Aoe-ModelCache/pkg/errors"
)

// FileSink appends report messages to rotated files under a base directory.
// Writers are created lazily per file name and shared across requests.
// FileSink 将报告消息追加到基础目录下的轮转文件。
// 写入器按文件名惰性创建并在请求间共享。
type FileSink struct {
	cfg     config.SinkConfig
	mu      sync.Mutex
	writers map[string]*lumberjack.Logger
	closed  bool
}

// NewFileSink creates a sink rooted at cfg.BaseDir.
// NewFileSink 创建以 cfg.BaseDir 为根的输出器。
func NewFileSink(cfg config.SinkConfig) *FileSink {
	if cfg.BaseDir == "" {
		cfg.BaseDir = config.DefaultSinkDir
	}
	return &FileSink{
		cfg:     cfg,
		writers: make(map[string]*lumberjack.Logger),
	}
}

// Append writes message plus a trailing newline to the named report file.
// Relative names resolve under the base directory; names escaping it are
// rejected. An empty name falls back to the default report file.
// Append 将消息加末尾换行写入指定的报告文件。
// 相对名称基于基础目录解析；越出目录的名称会被拒绝。空名称回退到默认报告文件。
func (s *FileSink) Append(file, message string) error {
	if file == "" {
		file = config.DefaultReportFile
	}

	path, err := s.resolve(file)
	if err != nil {
		logger.Get(nil).Warnf("[WARN]  Rejected report file name %q: %v", file, err)
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errs.ErrSinkClosed
	}
	writer, ok := s.writers[path]
	if !ok {
		writer = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    s.cfg.MaxSize,
			MaxBackups: s.cfg.MaxBackups,
			MaxAge:     s.cfg.MaxAge,
			Compress:   s.cfg.Compress,
		}
		s.writers[path] = writer
	}
	s.mu.Unlock()

	if _, err := writer.Write([]byte(message + "\n")); err != nil {
		logger.Get(nil).Warnf("[WARN]  Failed to append report to %s: %v", path, err)
		return err
	}
	return nil
}

// Close closes all writers. Further appends fail with ErrSinkClosed.
// Close 关闭所有写入器。之后的追加将返回 ErrSinkClosed。
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	for _, writer := range s.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// resolve maps a report file name to an absolute path under the base directory.
// resolve 将报告文件名映射为基础目录下的绝对路径。
func (s *FileSink) resolve(file string) (string, error) {
	if filepath.IsAbs(file) {
		return "", errs.NewFileError(file, errors.New("absolute paths are not allowed"))
	}

	base := filepath.Clean(s.cfg.BaseDir)
	path := filepath.Clean(filepath.Join(base, file))
	if !strings.HasPrefix(path, base+string(os.PathSeparator)) {
		return "", errs.NewFileError(file, errors.New("escapes the sink base directory"))
	}
	return path, nil
}
