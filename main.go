// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/alert"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/cache"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/checker"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/classifier"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/config"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/imapconnection"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/monitor"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/persistence"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/smtpconnection"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	resultCache := cache.NewRedisCache(conf.RedisAddr)

	clf := classifier.New(conf.ModelPath, conf.MaxEmailLength)
	err = clf.Load(conf.ModelPath)
	if errors.Is(err, domain.ErrModelNotFound) {
		logger.WithFields(logrus.Fields{"path": conf.ModelPath, "trainingdata": conf.TrainingData}).Info("No model artifact found, training from scratch")
		trainModel(clf, conf, logger)
	} else if err != nil {
		logger.WithField("error", err).Fatal("Could not load model")
	}

	fetcher := imapconnection.NewFetcher(conf.ImapHost, conf.User, conf.Password)
	sender := smtpconnection.NewSender(conf.SmtpHost, conf.User, conf.Password)

	policy := alert.Policy{
		DisplayThreshold: conf.DisplayThreshold,
		AlertThreshold:   conf.AlertThreshold,
	}
	dispatcher := alert.NewDispatcher(sender, conf.AlertsEnabled, conf.AlertTo)

	service := checker.NewService(
		clf,
		resultCache,
		p,
		dispatcher,
		policy,
		conf.SuspiciousKeywords,
		time.Duration(conf.CacheTTLSeconds)*time.Second,
	)

	logger.WithFields(logrus.Fields{"folders": conf.CheckFolders, "interval": conf.CheckIntervalSeconds, "alerts": conf.AlertsEnabled}).Info("Starting mailbox monitoring")

	m := monitor.New(
		fetcher,
		service,
		conf.CheckFolders,
		conf.FetchMax,
		time.Duration(conf.CheckIntervalSeconds)*time.Second,
	)
	m.Run(context.Background())
}

// trainModel trains from the configured CSV, generating a synthetic
// template-based dataset at that path first when none exists yet.
func trainModel(clf *classifier.PhishingClassifier, conf *config.Config, logger *logrus.Logger) {
	var texts []string
	var labels []int
	var err error
	if _, statErr := os.Stat(conf.TrainingData); statErr == nil {
		texts, labels, err = classifier.LoadTrainingCSV(conf.TrainingData, "text", "label")
	} else {
		logger.WithField("path", conf.TrainingData).Info("No training data found, generating synthetic dataset")
		texts, labels, err = classifier.GenerateSyntheticDataset(1000, conf.SuspiciousKeywords, conf.TrainingData)
	}
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load training data")
	}

	err = clf.Fit(texts, labels)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not train model")
	}

	err = clf.Save(conf.ModelPath)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not save model")
	}
}
