package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.isRetrying = false
}

func (c *connectionImpl) IsReady() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) IsClosed() bool {
	ready := c.IsReady()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !ready && !c.isRetrying
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.channel()
	if err != nil {
		return nil, err
	}
	chImpl := &channelImpl{conn: c, ch: ch}
	chImpl.listenNotifyReconnect()
	return chImpl, nil
}

func (c *connectionImpl) dial(connChan chan *amqp.Connection, cancelChan chan bool) {
	ctx := context.Background()
	for attempt := 1; ; attempt++ {
		select {
		case <-cancelChan:
			return
		default:
		}

		c.l.Infof(ctx, "pkg.rabbitmq.dial: connecting, attempt %d", attempt)
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.l.Warnf(ctx, "pkg.rabbitmq.dial: connection failed: %v", err)
			time.Sleep(RetryConnectionDelay)
			continue
		}
		c.l.Infof(ctx, "pkg.rabbitmq.dial: connected")
		connChan <- conn
		return
	}
}

func (c *connectionImpl) setConn(conn *amqp.Connection) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.listenNotifyClose(conn)
}

func (c *connectionImpl) connectWithoutTimeout() error {
	connChan := make(chan *amqp.Connection)
	go c.dial(connChan, make(chan bool))
	c.setConn(<-connChan)
	return nil
}

func (c *connectionImpl) connect() error {
	connChan := make(chan *amqp.Connection)
	cancelChan := make(chan bool, 1)
	go c.dial(connChan, cancelChan)
	select {
	case conn := <-connChan:
		c.setConn(conn)
		return nil
	case <-time.After(RetryConnectionTimeout):
		cancelChan <- true
		return ErrConnectionTimeout
	}
}

func (c *connectionImpl) listenNotifyClose(conn *amqp.Connection) {
	fn := c.connect
	if c.retryWithoutTimeout {
		fn = c.connectWithoutTimeout
	}
	notifyClose := conn.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		err, ok := <-notifyClose
		if !ok || err == nil {
			return
		}
		ctx := context.Background()

		c.mu.Lock()
		c.conn = nil
		c.isRetrying = true
		c.mu.Unlock()

		c.l.Warnf(ctx, "pkg.rabbitmq.listenNotifyClose: connection closed: %v", err)
		if err := fn(); err != nil {
			c.l.Errorf(ctx, "pkg.rabbitmq.listenNotifyClose: reconnect failed: %v", err)
		}

		c.mu.Lock()
		reconnects := c.reconnects
		c.isRetrying = false
		c.mu.Unlock()
		for _, reconnect := range reconnects {
			reconnect <- true
		}
	}()
}

func (c *connectionImpl) channel() (*amqp.Channel, error) {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()
	if conn == nil {
		return nil, ErrNotConnected
	}
	return conn.Channel()
}

func (c *connectionImpl) notifyReconnect(receiver chan bool) <-chan bool {
	c.mu.Lock()
	c.reconnects = append(c.reconnects, receiver)
	c.mu.Unlock()
	return receiver
}

func (ch *channelImpl) current() *amqp.Channel {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return ch.ch
}

func (ch *channelImpl) ExchangeDeclare(exc ExchangeArgs) error {
	return ch.current().ExchangeDeclare(exc.spread())
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return ch.current().QueueDeclare(queue.spread())
}

func (ch *channelImpl) QueueBind(queueBind QueueBindArgs) error {
	return ch.current().QueueBind(queueBind.spread())
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	return ch.current().PublishWithContext(publish.spread(ctx))
}

func (ch *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return ch.current().Consume(consume.spread())
}

func (ch *channelImpl) Close() error {
	return ch.current().Close()
}

func (ch *channelImpl) NotifyReconnect(receiver chan bool) <-chan bool {
	ch.mu.Lock()
	ch.reconnects = append(ch.reconnects, receiver)
	ch.mu.Unlock()
	return receiver
}

func (ch *channelImpl) listenNotifyReconnect() {
	reconnNoti := make(chan bool)
	ch.conn.notifyReconnect(reconnNoti)
	go func() {
		for range reconnNoti {
			ctx := context.Background()
			ch.conn.l.Infof(ctx, "pkg.rabbitmq.listenNotifyReconnect: recreating channel")
			channel, err := ch.conn.channel()
			if err != nil {
				ch.conn.l.Errorf(ctx, "pkg.rabbitmq.listenNotifyReconnect: channel failed: %v", err)
				continue
			}
			ch.mu.Lock()
			_ = ch.ch.Close()
			ch.ch = channel
			receivers := ch.reconnects
			ch.mu.Unlock()
			for _, r := range receivers {
				select {
				case r <- true:
				default:
				}
			}
		}
	}()
}
