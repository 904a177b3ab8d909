package tracking

import (
	"context"

	"seller-console/internal/domain"
)

type actionFunc func(context.Context, Event, *domain.Order) error

type actionFactory struct {
	byBucket map[domain.Bucket]actionFunc
}

func newActionFactory(onMoved, onDelivered, onReturned, onCancelled actionFunc) *actionFactory {
	return &actionFactory{
		byBucket: map[domain.Bucket]actionFunc{
			domain.BucketReadyToShip: onMoved,
			domain.BucketInTransit:   onMoved,
			domain.BucketDelivered:   onDelivered,
			domain.BucketRTO:         onReturned,
			domain.BucketCancelled:   onCancelled,
		},
	}
}

func (f *actionFactory) get(b domain.Bucket) (actionFunc, bool) {
	fn, ok := f.byBucket[b]
	return fn, ok
}
