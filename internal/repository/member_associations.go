package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/member-directory/internal/model"
)

// Each association call is one statement over arrays, so a failing pair
// aborts the whole call through the transaction rollback.

// AddCategories ensures each (member, category) pair exists. Pairs already
// present are left untouched.
func (r *memberRepo) AddCategories(ctx context.Context, memberID int64, categoryIDs []int64) error {
	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return nil
	}

	query := `
		INSERT INTO member_has_category (id_member, id_category)
		SELECT $1::bigint, unnest($2::bigint[])
		ON CONFLICT (id_member, id_category) DO NOTHING`

	return r.exec1(ctx, "member.add_categories", query, memberID, ids)
}

// RemoveCategories deletes the given (member, category) pairs. Pairs that
// do not exist are ignored.
func (r *memberRepo) RemoveCategories(ctx context.Context, memberID int64, categoryIDs []int64) error {
	ids := uniqueIDs(categoryIDs)
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM member_has_category WHERE id_member = $1 AND id_category = ANY($2::bigint[])`

	return r.exec1(ctx, "member.remove_categories", query, memberID, ids)
}

// AddNetworks upserts (member, network, url) rows, overwriting the url of
// existing pairs. Links with an empty url are skipped.
func (r *memberRepo) AddNetworks(ctx context.Context, memberID int64, links []model.NetworkLink) error {
	networkIDs, urls := splitLinks(links)
	if len(networkIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO member_has_network (id_member, id_network, url)
		SELECT $1::bigint, link.id_network, link.url
		FROM unnest($2::bigint[], $3::text[]) AS link(id_network, url)
		ON CONFLICT (id_member, id_network) DO UPDATE SET url = EXCLUDED.url`

	return r.exec.Do(ctx, "member.add_networks", func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query, memberID, networkIDs, urls)
		return err
	})
}

// RemoveNetworks deletes the given (member, network) pairs.
func (r *memberRepo) RemoveNetworks(ctx context.Context, memberID int64, networkIDs []int64) error {
	ids := uniqueIDs(networkIDs)
	if len(ids) == 0 {
		return nil
	}

	query := `DELETE FROM member_has_network WHERE id_member = $1 AND id_network = ANY($2::bigint[])`

	return r.exec1(ctx, "member.remove_networks", query, memberID, ids)
}

// uniqueIDs drops duplicates, keeping first-seen order.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// splitLinks filters out empty urls and collapses repeated networks to the
// last url given. ON CONFLICT DO UPDATE cannot touch the same row twice in
// one statement, so repeats must not reach the database.
func splitLinks(links []model.NetworkLink) ([]int64, []string) {
	index := make(map[int64]int, len(links))
	networkIDs := make([]int64, 0, len(links))
	urls := make([]string, 0, len(links))

	for _, link := range links {
		if link.URL == "" {
			continue
		}
		if i, ok := index[link.NetworkID]; ok {
			urls[i] = link.URL
			continue
		}
		index[link.NetworkID] = len(networkIDs)
		networkIDs = append(networkIDs, link.NetworkID)
		urls = append(urls, link.URL)
	}

	return networkIDs, urls
}
