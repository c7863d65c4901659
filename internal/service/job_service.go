package service

import (
	"fmt"
	"log"
	"net"
	"time"

	"samarlodge/internal/config"
)

const probeTimeout = 10 * time.Second

// JobService runs the scheduled mail-relay reachability probe so a broken
// relay shows up in the logs before a guest hits it. It only observes; failed
// sends are never queued or retried.
type JobService struct {
	Mail config.MailConfig
}

func NewJobService(mail config.MailConfig) *JobService {
	return &JobService{Mail: mail}
}

// CheckMailTransport dials the configured relay and logs the result.
func (s *JobService) CheckMailTransport() error {
	if !s.Mail.Ready() {
		log.Println("Cron Job: Mail transport not configured, skipping relay check.")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.Mail.Host, s.Mail.Port)
	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		return fmt.Errorf("cron job: mail relay %s unreachable: %w", addr, err)
	}
	conn.Close()

	log.Printf("Cron Job: Mail relay %s reachable.", addr)
	return nil
}
