package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/toybox-next/internal/logger"
	"github.com/toybox-next/internal/provider"
	"github.com/toybox-next/internal/queue"
	"github.com/toybox-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail := strings.TrimSpace(order.Email)
	locale := strings.TrimSpace(order.Locale)
	if order.CustomerID != nil && *order.CustomerID != 0 {
		customer, err := c.CustomerRepo.GetByID(*order.CustomerID)
		if err != nil {
			logger.Warnw("worker_order_status_email_fetch_customer_failed", "order_id", order.ID, "customer_id", *order.CustomerID, "error", err)
			return err
		}
		if customer != nil {
			receiverEmail = strings.TrimSpace(customer.Email)
			if strings.TrimSpace(customer.Locale) != "" {
				locale = strings.TrimSpace(customer.Locale)
			}
		}
	}
	if receiverEmail == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		To:      receiverEmail,
		OrderNo: order.OrderNo,
		Status:  status,
		Total:   order.Total,
		Locale:  locale,
		Created: payload.Created,
	}
	if err := c.EmailService.SendOrderStatusEmail(input); err != nil {
		logger.Warnw("worker_order_status_email_send_failed", "order_id", order.ID, "order_no", order.OrderNo, "error", err)
		return err
	}
	logger.Infow("worker_order_status_email_sent", "order_id", order.ID, "order_no", order.OrderNo, "status", status)
	return nil
}
