package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const NotificationCollection = "notifications"

// 通知事件类型
const (
	EventLikeCreated    = "LIKE_CREATED"
	EventCommentCreated = "COMMENT_CREATED"
	EventPostCreated    = "POST_CREATED"
	EventReportCreated  = "REPORT_CREATED"
)

// NotificationModel 通知模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 接收者
	ActorID    uint64             `bson:"actor_id" json:"actorId"`       // 动作发起者
	Event      string             `bson:"event" json:"event"`
	ItemType   string             `bson:"item_type" json:"itemType"` // REPORT / POST / COMMENT
	ItemID     uint64             `bson:"item_id" json:"itemId"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"` // 文案预览
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
