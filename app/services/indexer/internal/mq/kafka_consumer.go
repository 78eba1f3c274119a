package mq

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"StylistAI/app/dal/product"
	"StylistAI/app/services/indexer/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

func StartCanalProductConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	if len(sc.Config.KafkaConf.Brokers) == 0 || sc.Config.KafkaConf.ProductsTopic == "" || sc.Config.KafkaConf.Group == "" {
		logx.Infow("skip product consumer, kafka config missing")
		return nil
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     sc.Config.KafkaConf.Brokers,
		GroupID:     sc.Config.KafkaConf.Group,
		Topic:       sc.Config.KafkaConf.ProductsTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     50 * time.Millisecond,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logx.Errorw("fetch product message failed", logx.Field("err", err))
			continue
		}

		var evt CanalMessageProducts
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			logx.Errorw("unmarshal product message failed", logx.Field("err", err))
		} else if sc.Index == nil {
			logx.Infow("skip product message, product index unavailable")
		} else {
			HandleProductMessage(ctx, sc.Index, evt)
		}

		if err := r.CommitMessages(ctx, m); err != nil {
			logx.Errorw("commit product message failed", logx.Field("err", err))
		}
	}
}

// HandleProductMessage applies one canal event to the index. Row failures are
// logged and skipped so one bad row does not block the partition.
func HandleProductMessage(ctx context.Context, index product.IndexModel, message CanalMessageProducts) {
	if message.IsDdl || len(message.Data) == 0 {
		return
	}

	eventType := strings.ToUpper(message.Type)
	for _, row := range message.Data {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			continue
		}

		switch eventType {
		case "DELETE":
			if err := index.DeleteCtx(ctx, id); err != nil && !errors.Is(err, product.ErrNotFound) {
				logx.Errorw("delete product document failed", logx.Field("id", id), logx.Field("err", err))
			}
		case "INSERT", "UPDATE":
			if err := index.UpsertCtx(ctx, ToProduct(row)); err != nil {
				logx.Errorw("upsert product document failed", logx.Field("id", id), logx.Field("err", err))
			}
		}
	}
}

// ToProduct converts a canal row. Unparseable numbers become zero and a
// malformed images column is read as a single URL.
func ToProduct(row ProductRow) *product.Products {
	p := &product.Products{
		Id:                 strings.TrimSpace(row.ID),
		Title:              strings.TrimSpace(row.Title),
		Description:        strings.TrimSpace(row.Description),
		Price:              parseFloat(row.Price),
		DiscountPercentage: parseFloat(row.DiscountPercentage),
		Rating:             parseFloat(row.Rating),
		Stock:              parseInt(row.Stock),
		Brand:              strings.TrimSpace(row.Brand),
		Category:           strings.TrimSpace(row.Category),
		Thumbnail:          strings.TrimSpace(row.Thumbnail),
		Images:             parseImages(row.Images),
	}
	return p.Normalize()
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	return int64(parseFloat(raw))
}

func parseImages(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err == nil {
		return images
	}
	return []string{raw}
}
