package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"
)

// LoggerConfig tells ConfigureLogger where to write and whether Info lines are
// echoed on a Telegram chat.
type LoggerConfig struct {
	File           string // "-" or empty writes to stderr
	Level          string
	TelegramOutput bool
	TelegramToken  string
	TelegramChatId string
}

type FileLogger struct {
	logger         *log.Logger
	closer         io.Closer
	telegramOutput bool
	telegramToken  string
	telegramChatId string
}

// Logger is the process wide logger. It writes to stderr until ConfigureLogger is called.
var Logger = NewFileLogger(os.Stderr)

func NewFileLogger(out io.Writer) *FileLogger {
	plainFormatter := new(PlainFormatter)
	plainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	plainFormatter.LevelDesc = []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"}

	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(plainFormatter)
	logger.SetLevel(log.InfoLevel)
	return &FileLogger{logger: logger}
}

// ConfigureLogger applies cfg to Logger.
func ConfigureLogger(cfg LoggerConfig) error {
	if cfg.TelegramOutput {
		if cfg.TelegramToken == "" {
			return fmt.Errorf("telegramOutput set to true but telegramToken parameter not found")
		}
		if cfg.TelegramChatId == "" {
			return fmt.Errorf("telegramOutput set to true but telegramChatId parameter not found")
		}
	}

	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" && cfg.File != "-" {
		f, err := os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		out = f
		closer = f
	}

	if Logger.closer != nil {
		_ = Logger.closer.Close()
	}
	Logger.logger.SetOutput(out)
	Logger.logger.SetLevel(level)
	Logger.closer = closer
	Logger.telegramOutput = cfg.TelegramOutput
	Logger.telegramToken = cfg.TelegramToken
	Logger.telegramChatId = cfg.TelegramChatId
	return nil
}

func (l *FileLogger) Errorln(args ...interface{}) {
	l.logger.Errorln(args...)
}

func (l *FileLogger) Fatalln(args ...interface{}) {
	l.logger.Fatalln(args...)
}

func (l *FileLogger) Warnln(args ...interface{}) {
	l.logger.Warnln(args...)
}

// Infoln logs and, when enabled, echoes the message on Telegram.
func (l *FileLogger) Infoln(args ...interface{}) {
	l.logger.Infoln(args...)
	if l.telegramOutput {
		err := sendOnTelegramChannel(fmt.Sprint(args...), l.telegramToken, l.telegramChatId)
		if err != nil {
			l.logger.Warnln("telegram: " + err.Error())
		}
	}
}

func (l *FileLogger) Debugln(args ...interface{}) {
	l.logger.Debugln(args...)
}

func (l *FileLogger) Traceln(args ...interface{}) {
	l.logger.Traceln(args...)
}

type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if int(entry.Level) < len(f.LevelDesc) {
		level = f.LevelDesc[entry.Level]
	}
	timestamp := entry.Time.Format(f.TimestampFormat)
	return []byte(fmt.Sprintf("%s %s %s\n", level, timestamp, strings.TrimSuffix(entry.Message, "\n"))), nil
}

func sendOnTelegramChannel(message string, token string, chatID string) error {
	b, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return err
	}

	id, err := b.ChatByID(chatID)
	if err != nil {
		return err
	}
	_, err = b.Send(id, message)
	return err
}
