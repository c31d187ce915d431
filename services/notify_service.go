package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/killingrose3/taluo/config"
)

// MQTT通知主题
const (
	TopicAnnouncement = "nyx/announcements"
	TopicSettlement   = "nyx/settlements"
)

// InterfaceNotifyService 定义通知推送服务接口
type InterfaceNotifyService interface {
	Connect() error
	Disconnect()
	PublishAnnouncement(id uint, content string) error
	PublishSettlement(receptionistID uint, settlementNo string, amount float64, taskFailed bool) error
}

// NotifyService 通过MQTT向在线客户端推送公告和结算事件
type NotifyService struct {
	Config *config.Config
	Client mqtt.Client

	isConnected    bool
	connectedMutex sync.RWMutex
}

// announcementEvent 公告推送消息体
type announcementEvent struct {
	AnnouncementID uint   `json:"announcement_id"`
	Content        string `json:"content"`
	Timestamp      int64  `json:"timestamp"`
}

// settlementEvent 结算推送消息体
type settlementEvent struct {
	ReceptionistID uint    `json:"receptionist_id"`
	SettlementNo   string  `json:"settlement_no"`
	Amount         float64 `json:"amount"`
	TaskFailed     bool    `json:"task_failed"`
	Timestamp      int64   `json:"timestamp"`
}

// NewNotifyService 创建一个新的通知推送服务
func NewNotifyService(cfg *config.Config) InterfaceNotifyService {
	service := &NotifyService{
		Config: cfg,
	}
	service.setupMQTTClient()
	return service
}

// setupMQTTClient 设置MQTT客户端
func (s *NotifyService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	// 设置连接丢失回调
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接丢失: %v", err)
		s.connectedMutex.Lock()
		s.isConnected = false
		s.connectedMutex.Unlock()
	})

	// 设置连接建立回调
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Println("[MQTT] 成功连接到", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.isConnected = true
		s.connectedMutex.Unlock()
	})

	s.Client = mqtt.NewClient(opts)
}

// Connect 连接到MQTT服务器；连接失败不阻塞服务启动，推送降级为空操作
func (s *NotifyService) Connect() error {
	log.Printf("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	token := s.Client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() == nil {
		s.connectedMutex.Lock()
		s.isConnected = true
		s.connectedMutex.Unlock()
		return nil
	}

	if token.Error() != nil {
		return token.Error()
	}
	return fmt.Errorf("连接MQTT服务器超时")
}

// Disconnect 断开MQTT连接
func (s *NotifyService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// publish 序列化并发布消息，未连接时记录日志后放弃
func (s *NotifyService) publish(topic string, payload interface{}) error {
	s.connectedMutex.RLock()
	connected := s.isConnected && s.Client.IsConnected()
	s.connectedMutex.RUnlock()

	if !connected {
		log.Printf("[MQTT] 未连接，跳过推送: topic=%s", topic)
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	token := s.Client.Publish(topic, 1, false, data)
	if token.WaitTimeout(3*time.Second) && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// PublishAnnouncement 推送新公告事件
func (s *NotifyService) PublishAnnouncement(id uint, content string) error {
	return s.publish(TopicAnnouncement, announcementEvent{
		AnnouncementID: id,
		Content:        content,
		Timestamp:      time.Now().Unix(),
	})
}

// PublishSettlement 推送结算完成事件
func (s *NotifyService) PublishSettlement(receptionistID uint, settlementNo string, amount float64, taskFailed bool) error {
	return s.publish(TopicSettlement, settlementEvent{
		ReceptionistID: receptionistID,
		SettlementNo:   settlementNo,
		Amount:         amount,
		TaskFailed:     taskFailed,
		Timestamp:      time.Now().Unix(),
	})
}
