package database

import (
	"context"
	"database/sql"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type HeroSlideRepository struct {
	DB *sql.DB
}

func NewHeroSlideRepository(db *sql.DB) *HeroSlideRepository {
	return &HeroSlideRepository{DB: db}
}

const heroSlideColumns = `id, pair_key, position, "order", is_active,
	badge_label, badge_icon, title, highlighted_text, subtitle,
	primary_label, primary_url, primary_icon,
	secondary_label, secondary_url, secondary_icon,
	stat_1_value, stat_1_label, stat_2_value, stat_2_label, stat_3_value, stat_3_label,
	image_path, visual_title, visual_subtitle, visual_badge,
	theme_variant, created_at, updated_at`

// ListActive renvoie les slides actives triées pour que les deux moitiés
// d'une même paire (pair_key) sortent côte à côte, texte avant visuel.
func (r *HeroSlideRepository) ListActive(ctx context.Context) ([]*entity.HeroSlide, error) {
	query := `
		SELECT ` + heroSlideColumns + `
		FROM hero_slides
		WHERE is_active = TRUE
		ORDER BY "order", pair_key, position
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slides []*entity.HeroSlide
	for rows.Next() {
		var s entity.HeroSlide
		if err := rows.Scan(
			&s.ID, &s.PairKey, &s.Position, &s.Order, &s.IsActive,
			&s.BadgeLabel, &s.BadgeIcon, &s.Title, &s.HighlightedText, &s.Subtitle,
			&s.PrimaryLabel, &s.PrimaryURL, &s.PrimaryIcon,
			&s.SecondaryLabel, &s.SecondaryURL, &s.SecondaryIcon,
			&s.Stat1Value, &s.Stat1Label, &s.Stat2Value, &s.Stat2Label, &s.Stat3Value, &s.Stat3Label,
			&s.ImagePath, &s.VisualTitle, &s.VisualSubtitle, &s.VisualBadge,
			&s.ThemeVariant, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		slides = append(slides, &s)
	}
	return slides, rows.Err()
}

func (r *HeroSlideRepository) Create(ctx context.Context, s *entity.HeroSlide) error {
	query := `
		INSERT INTO hero_slides (id, pair_key, position, "order", is_active,
		    badge_label, badge_icon, title, highlighted_text, subtitle,
		    primary_label, primary_url, primary_icon,
		    secondary_label, secondary_url, secondary_icon,
		    stat_1_value, stat_1_label, stat_2_value, stat_2_label, stat_3_value, stat_3_label,
		    image_path, visual_title, visual_subtitle, visual_badge,
		    theme_variant, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.PairKey, s.Position, s.Order, s.IsActive,
		s.BadgeLabel, s.BadgeIcon, s.Title, s.HighlightedText, s.Subtitle,
		s.PrimaryLabel, s.PrimaryURL, s.PrimaryIcon,
		s.SecondaryLabel, s.SecondaryURL, s.SecondaryIcon,
		s.Stat1Value, s.Stat1Label, s.Stat2Value, s.Stat2Label, s.Stat3Value, s.Stat3Label,
		s.ImagePath, s.VisualTitle, s.VisualSubtitle, s.VisualBadge,
		s.ThemeVariant, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *HeroSlideRepository) Update(ctx context.Context, s *entity.HeroSlide) error {
	query := `
		UPDATE hero_slides
		SET pair_key = $2, position = $3, "order" = $4, is_active = $5,
		    badge_label = $6, badge_icon = $7, title = $8, highlighted_text = $9, subtitle = $10,
		    primary_label = $11, primary_url = $12, primary_icon = $13,
		    secondary_label = $14, secondary_url = $15, secondary_icon = $16,
		    stat_1_value = $17, stat_1_label = $18, stat_2_value = $19, stat_2_label = $20,
		    stat_3_value = $21, stat_3_label = $22,
		    image_path = $23, visual_title = $24, visual_subtitle = $25, visual_badge = $26,
		    theme_variant = $27, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		s.ID, s.PairKey, s.Position, s.Order, s.IsActive,
		s.BadgeLabel, s.BadgeIcon, s.Title, s.HighlightedText, s.Subtitle,
		s.PrimaryLabel, s.PrimaryURL, s.PrimaryIcon,
		s.SecondaryLabel, s.SecondaryURL, s.SecondaryIcon,
		s.Stat1Value, s.Stat1Label, s.Stat2Value, s.Stat2Label, s.Stat3Value, s.Stat3Label,
		s.ImagePath, s.VisualTitle, s.VisualSubtitle, s.VisualBadge,
		s.ThemeVariant,
	)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}

func (r *HeroSlideRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}
