package utils

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID 生成 24 位 hex 的 ObjectID，SQL 与 Mongo 两种存储共用同一种 ID 格式
func NewID() string { return primitive.NewObjectID().Hex() }

// ParseID 校验 ID 是否为合法的 ObjectID
func ParseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
