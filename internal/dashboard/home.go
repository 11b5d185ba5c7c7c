package dashboard

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

const homeUpcomingLimit = 3

type HomeData struct {
	Live     *LiveMatch
	Upcoming []Match
}

// LoadHome fetches the live match and the next upcoming fixtures concurrently.
func LoadHome(ctx context.Context, api API) (HomeData, error) {
	var data HomeData

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		live, err := api.Live(ctx)
		if err != nil {
			return fmt.Errorf("load live match: %w", err)
		}
		data.Live = live
		return nil
	})
	p.Go(func(ctx context.Context) error {
		upcoming, err := api.Upcoming(ctx, homeUpcomingLimit)
		if err != nil {
			return fmt.Errorf("load upcoming matches: %w", err)
		}
		data.Upcoming = upcoming
		return nil
	})

	if err := p.Wait(); err != nil {
		return HomeData{}, err
	}
	return data, nil
}
