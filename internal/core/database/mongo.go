package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoOpts struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// NewMongo 连接并 ping，返回数据库句柄与关闭函数
func NewMongo(ctx context.Context, o MongoOpts) (*mongo.Database, func(context.Context) error, error) {
	co := options.Client().ApplyURI(o.URI)
	if o.Username != "" {
		co.SetAuth(options.Credential{Username: o.Username, Password: o.Password})
	}
	if o.MaxPoolSize > 0 {
		co.SetMaxPoolSize(o.MaxPoolSize)
	}
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = 10 * time.Second
	}
	co.SetConnectTimeout(o.ConnectTimeout)

	cli, err := mongo.Connect(ctx, co)
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, o.ConnectTimeout)
	defer cancel()
	if err := cli.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, nil, err
	}
	return cli.Database(o.Database), cli.Disconnect, nil
}
