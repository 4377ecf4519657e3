package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vendora/marketplace/internal/core/domain"
	"github.com/vendora/marketplace/internal/core/logger"
	"github.com/vendora/marketplace/internal/core/port"
)

const (
	dashboardCacheTTL = 1 * time.Minute
	recentSalesWindow = 30 * 24 * time.Hour
	topProductsLimit  = 3
)

// DashboardService composes independent read-only queries over the
// product and order stores into one reporting snapshot. Results are
// cached briefly; slightly stale reads are acceptable for reporting.
type DashboardService struct {
	productService *ProductService
	orderRepo      port.OrderPort
	statsCache     port.CachePort[domain.DashboardStats]
	now            func() time.Time
}

func NewDashboardService(
	productService *ProductService,
	orderRepo port.OrderPort,
	statsCache port.CachePort[domain.DashboardStats],
) *DashboardService {
	return &DashboardService{
		productService: productService,
		orderRepo:      orderRepo,
		statsCache:     statsCache,
		now:            time.Now,
	}
}

func (s *DashboardService) getCacheKey(ownerID domain.ID, accountName string) string {
	return fmt.Sprintf("dashboard:%s:%s", ownerID, accountName)
}

func (s *DashboardService) GetStats(ctx context.Context, ownerID domain.ID, accountName string) (*domain.DashboardStats, error) {
	cacheKey := s.getCacheKey(ownerID, accountName)

	cached, err := s.statsCache.Get(ctx, cacheKey)
	if err != nil {
		logger.Error(ctx, "cache: get dashboard stats failed", err, map[string]any{
			"owner_id": ownerID,
		})
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := s.computeStats(ctx, ownerID, accountName)
	if err != nil {
		return nil, err
	}

	if err := s.statsCache.Set(ctx, cacheKey, stats, dashboardCacheTTL); err != nil {
		logger.Error(ctx, "cache: set dashboard stats failed", err, map[string]any{
			"owner_id": ownerID,
		})
	}

	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context, ownerID domain.ID, accountName string) (*domain.DashboardStats, error) {
	totalProducts, err := s.productService.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count products: %w", err)
	}

	lowStock, err := s.productService.CountLowStockByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count low stock: %w", err)
	}

	pendingOrders, err := s.orderRepo.CountByAccountAndStatus(ctx, accountName, domain.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard: count pending orders: %w", err)
	}

	recentSales, err := s.recentSales(ctx, accountName)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.orderRepo.TopProductsByQuantity(ctx, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top products: %w", err)
	}

	return &domain.DashboardStats{
		TotalProducts: totalProducts,
		LowStockItems: lowStock,
		PendingOrders: pendingOrders,
		RecentSales:   recentSales,
		TopProducts:   topProducts,
	}, nil
}

// recentSales returns the rolling 30-day sales sum and its percent
// change against the preceding 30-day window (0 when that window had no
// sales).
func (s *DashboardService) recentSales(ctx context.Context, accountName string) (domain.RecentSales, error) {
	nowTime := s.now()
	windowStart := nowTime.Add(-recentSalesWindow)
	priorStart := windowStart.Add(-recentSalesWindow)

	current, err := s.orderRepo.SalesTotalBetween(ctx, accountName, windowStart, nowTime)
	if err != nil {
		return domain.RecentSales{}, fmt.Errorf("dashboard: recent sales: %w", err)
	}

	prior, err := s.orderRepo.SalesTotalBetween(ctx, accountName, priorStart, windowStart)
	if err != nil {
		return domain.RecentSales{}, fmt.Errorf("dashboard: prior sales: %w", err)
	}

	change := 0.0
	if prior > 0 {
		change = (float64(current) - float64(prior)) / float64(prior) * 100
	}

	return domain.RecentSales{Amount: current, Change: change}, nil
}
