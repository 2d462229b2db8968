package main

import (
	"encoding/json"
	"fmt"
	"time"

	"mission-report-srv/config"
	kafkaDelivery "mission-report-srv/internal/missionreport/delivery/kafka"
	pkgKafka "mission-report-srv/pkg/kafka"

	"github.com/spf13/cobra"
)

func newRequestCmd() *cobra.Command {
	var (
		userID        string
		savedReportID string
	)
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Queue a generation for a user through Kafka",
		Long:  "Publish a generation request that the consumer service runs on behalf of --user. --params overrides the saved report parameters.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			msg := kafkaDelivery.GenerateRequestedMessage{
				UserID:        userID,
				SavedReportID: savedReportID,
				RequestedAt:   time.Now().UTC(),
			}
			if paramsFile != "" {
				params, err := loadParams(paramsFile)
				if err != nil {
					return err
				}
				msg.Params = &params
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			producer, err := pkgKafka.NewProducer(pkgKafka.Config{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.GenerateTopic,
			})
			if err != nil {
				return err
			}
			defer producer.Close()

			if err := publishRequest(producer, msg); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, msg)
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user the generation runs for")
	cmd.Flags().StringVar(&savedReportID, "saved-report", "", "saved report to select before generating")
	return cmd
}

func publishRequest(producer pkgKafka.IProducer, msg kafkaDelivery.GenerateRequestedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal generate request: %w", err)
	}
	if err := producer.Publish([]byte(msg.UserID), body); err != nil {
		return fmt.Errorf("failed to publish generate request: %w", err)
	}
	return nil
}

