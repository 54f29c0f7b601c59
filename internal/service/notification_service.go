package service

import (
	"context"
	"fmt"
	"movie_discovery/configs"
	errorHandler "movie_discovery/pkg/error"
	"sync"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type INotificationService interface {
	AddNotificationToQueue(notifToken string, title string, body string)
	StopNotificationQueue()
	RunNotificationQueue()
}

type NotificationService struct {
	messagingClient  *messaging.Client
	queue            []notificationItem
	queueMux         *sync.Mutex
	dispatchInterval time.Duration
	wg               sync.WaitGroup
}

type notificationItem struct {
	notifToken string
	title      string
	body       string
}

const (
	notificationConsumerCount = 4
)

func NewNotificationService() *NotificationService {
	svc := &NotificationService{
		queue:            make([]notificationItem, 0),
		queueMux:         &sync.Mutex{},
		dispatchInterval: 1 * time.Second,
		wg:               sync.WaitGroup{},
	}

	keyPath := configs.GetConfigs().FirebaseAuthKeyPath
	if keyPath != "" {
		app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(keyPath))
		if err != nil {
			errorMessage := fmt.Sprintf("Error initializing firebase app: %v", err)
			errorHandler.SaveError(errorMessage, err)
		} else {
			client, err := app.Messaging(context.Background())
			if err != nil {
				errorMessage := fmt.Sprintf("Error initializing firebase messaging: %v", err)
				errorHandler.SaveError(errorMessage, err)
			} else {
				svc.messagingClient = client
			}
		}
	}

	for i := 0; i < notificationConsumerCount; i++ {
		svc.RunNotificationQueue()
	}

	return svc
}

//------------------------------------------
//------------------------------------------

func (n *NotificationService) notificationQueueHandler() {
	defer n.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("recovered from panic: %v\n", r)
			n.RunNotificationQueue()
		}
	}()

	for {
		time.Sleep(n.dispatchInterval)
		n.queueMux.Lock()
		if len(n.queue) == 0 {
			n.queueMux.Unlock()
			time.Sleep(n.dispatchInterval)
			continue
		}

		queueItem := n.queue[0]
		n.queue = n.queue[1:]
		n.queueMux.Unlock()

		if n.messagingClient == nil || configs.GetDbConfigs().DisableNotifications {
			continue
		}

		message := &messaging.Message{
			Token: queueItem.notifToken,
			Notification: &messaging.Notification{
				Title: queueItem.title,
				Body:  queueItem.body,
			},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := n.messagingClient.Send(ctx, message)
		cancel()
		if err != nil {
			errorMessage := fmt.Sprintf("Error on sending fcm push: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
	}
}

func (n *NotificationService) AddNotificationToQueue(notifToken string, title string, body string) {
	n.queueMux.Lock()
	defer n.queueMux.Unlock()

	newItem := notificationItem{
		notifToken: notifToken,
		title:      title,
		body:       body,
	}
	n.queue = append(n.queue, newItem)
}

func (n *NotificationService) StopNotificationQueue() {
	n.wg.Wait()
}

func (n *NotificationService) RunNotificationQueue() {
	n.wg.Add(1)
	go n.notificationQueueHandler()
}
